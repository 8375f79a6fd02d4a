package weather

import (
	"testing"

	"github.com/mreider/lemonade/internal/entropy"
)

// fakeSource replays a fixed draw sequence, then returns 0.5 forever.
type fakeSource struct {
	vals []float64
	i    int
}

func (f *fakeSource) Float() float64 {
	if f.i >= len(f.vals) {
		return 0.5
	}
	v := f.vals[f.i]
	f.i++
	return v
}

func TestFirstTwoDaysAlwaysSunny(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		m := NewModel(seed)
		src := entropy.NewSeeded(seed)
		for day := 1; day <= 2; day++ {
			out := m.Draw(day, src)
			if out.Condition != Sunny {
				t.Fatalf("seed %d day %d: condition %v, want sunny", seed, day, out.Condition)
			}
			if out.Event.Kind != EventNone {
				t.Fatalf("seed %d day %d: event %v, want none", seed, day, out.Event.Kind)
			}
		}
	}
}

func TestConditionRanges(t *testing.T) {
	tests := []struct {
		name      string
		vals      []float64
		condition Condition
		event     EventKind
	}{
		{name: "low draw is sunny", vals: []float64{0.0, 0.9}, condition: Sunny, event: EventNone},
		{name: "sunny upper bound", vals: []float64{0.59, 0.9}, condition: Sunny, event: EventNone},
		{name: "hot lower bound", vals: []float64{0.6}, condition: Hot, event: EventHeatWave},
		{name: "hot upper bound", vals: []float64{0.79}, condition: Hot, event: EventHeatWave},
		{name: "cloudy brings light rain", vals: []float64{0.8, 0.3, 0.2}, condition: Cloudy, event: EventLightRain},
		{name: "cloudy can storm", vals: []float64{0.99, 0.1}, condition: Storm, event: EventStorm},
		{name: "sunny street work", vals: []float64{0.1, 0.2}, condition: Sunny, event: EventStreetWork},
	}
	for _, tc := range tests {
		out := NewModel(1).Draw(3, &fakeSource{vals: tc.vals})
		if out.Condition != tc.condition || out.Event.Kind != tc.event {
			t.Fatalf("%s: got (%v,%v) want (%v,%v)", tc.name, out.Condition, out.Event.Kind, tc.condition, tc.event)
		}
	}
}

func TestStormReplacesConditionEntirely(t *testing.T) {
	out := NewModel(1).Draw(5, &fakeSource{vals: []float64{0.85, 0.24}})
	if out.Condition != Storm {
		t.Fatalf("storm must replace the day's condition, got %v", out.Condition)
	}
}

func TestLightRainAnnouncedChance(t *testing.T) {
	// 30 + floor(u*5)*10, one of {30,40,50,60,70}.
	tests := []struct {
		u    float64
		want int
	}{
		{u: 0.0, want: 30},
		{u: 0.19, want: 30},
		{u: 0.2, want: 40},
		{u: 0.5, want: 50},
		{u: 0.79, want: 60},
		{u: 0.99, want: 70},
	}
	for _, tc := range tests {
		got := RainChance(&fakeSource{vals: []float64{tc.u}})
		if got != tc.want {
			t.Fatalf("RainChance(%.2f)=%d want=%d", tc.u, got, tc.want)
		}
	}
}

func TestRainChanceRedrawsEveryCall(t *testing.T) {
	src := &fakeSource{vals: []float64{0.0, 0.99}}
	first := RainChance(src)
	second := RainChance(src)
	if first != 30 || second != 70 {
		t.Fatalf("expected independent draws 30 then 70, got %d then %d", first, second)
	}
}

func TestAtMostOneEventPerDay(t *testing.T) {
	// The tagged variant makes double events impossible by construction;
	// this locks in the event/condition pairing across many seeds.
	for seed := int64(0); seed < 200; seed++ {
		m := NewModel(seed)
		src := entropy.NewSeeded(seed)
		for day := 3; day <= 30; day++ {
			out := m.Draw(day, src)
			switch out.Event.Kind {
			case EventStorm:
				if out.Condition != Storm {
					t.Fatalf("seed %d day %d: storm event with condition %v", seed, day, out.Condition)
				}
			case EventHeatWave:
				if out.Condition != Hot {
					t.Fatalf("seed %d day %d: heat wave with condition %v", seed, day, out.Condition)
				}
			case EventLightRain:
				if out.Condition != Cloudy {
					t.Fatalf("seed %d day %d: light rain with condition %v", seed, day, out.Condition)
				}
				if out.Event.RainChance < 30 || out.Event.RainChance > 70 || out.Event.RainChance%10 != 0 {
					t.Fatalf("seed %d day %d: rain chance %d out of set", seed, day, out.Event.RainChance)
				}
			case EventStreetWork:
				if out.Condition != Sunny {
					t.Fatalf("seed %d day %d: street work with condition %v", seed, day, out.Condition)
				}
			}
		}
	}
}

func TestTemperatureTracksCondition(t *testing.T) {
	m := NewModel(9)
	day := 12
	if m.Temperature(day, Hot) <= m.Temperature(day, Sunny) {
		t.Fatal("hot day should read warmer than a sunny one")
	}
	if m.Temperature(day, Storm) >= m.Temperature(day, Cloudy) {
		t.Fatal("storm should read cooler than cloudy")
	}
	// Same model, same day, same condition: stable reading.
	if m.Temperature(day, Sunny) != m.Temperature(day, Sunny) {
		t.Fatal("temperature must be deterministic")
	}
}
