package trivia

import (
	"errors"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	q, err := New("Capital of France?", []string{"Berlin", "Paris", "Rome", "Madrid"}, 1, DifficultyEasy, "Geography")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.CorrectAnswer() != "Paris" {
		t.Errorf("CorrectAnswer() = %q, want %q", q.CorrectAnswer(), "Paris")
	}
	if q.Category() != "Geography" {
		t.Errorf("Category() = %q, want %q", q.Category(), "Geography")
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		options    []string
		correct    int
		difficulty Difficulty
	}{
		{"empty text", "  ", []string{"a", "b"}, 0, DifficultyEasy},
		{"one option", "q", []string{"a"}, 0, DifficultyEasy},
		{"negative index", "q", []string{"a", "b"}, -1, DifficultyEasy},
		{"index too large", "q", []string{"a", "b"}, 2, DifficultyEasy},
		{"bad difficulty", "q", []string{"a", "b"}, 0, Difficulty("extreme")},
		{"empty difficulty", "q", []string{"a", "b"}, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.text, tt.options, tt.correct, tt.difficulty, "")
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("err = %v, want *ConfigurationError", err)
			}
		})
	}
}

func TestNew_CopiesOptions(t *testing.T) {
	opts := []string{"a", "b", "c"}
	q := MustNew("q", opts, 0, DifficultyEasy)
	opts[0] = "mutated"
	if q.Option(0) != "a" {
		t.Errorf("Option(0) = %q, want %q (caller slice must not alias)", q.Option(0), "a")
	}

	got := q.Options()
	got[1] = "mutated"
	if q.Option(1) != "b" {
		t.Errorf("Option(1) = %q, want %q (returned slice must not alias)", q.Option(1), "b")
	}
}

func TestCheckAnswer(t *testing.T) {
	q := MustNew("q", []string{"a", "b", "c", "d"}, 2, DifficultyMedium)
	for i := -1; i < 5; i++ {
		want := i == 2
		if got := q.CheckAnswer(i); got != want {
			t.Errorf("CheckAnswer(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestDifficultyValue(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{DifficultyEasy, 100},
		{DifficultyMedium, 200},
		{DifficultyHard, 300},
	}
	for _, tt := range tests {
		q := MustNew("q", []string{"a", "b"}, 0, tt.d)
		got, err := q.DifficultyValue()
		if err != nil {
			t.Fatalf("DifficultyValue(%s): %v", tt.d, err)
		}
		if got != tt.want {
			t.Errorf("DifficultyValue(%s) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestDifficultyValue_ZeroQuestion(t *testing.T) {
	var q Question
	_, err := q.DifficultyValue()
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *ConfigurationError", err)
	}
}

func TestHarderEasier_Clamped(t *testing.T) {
	tests := []struct {
		d      Difficulty
		harder Difficulty
		easier Difficulty
	}{
		{DifficultyEasy, DifficultyMedium, DifficultyEasy},
		{DifficultyMedium, DifficultyHard, DifficultyEasy},
		{DifficultyHard, DifficultyHard, DifficultyMedium},
	}
	for _, tt := range tests {
		if got := tt.d.Harder(); got != tt.harder {
			t.Errorf("%s.Harder() = %s, want %s", tt.d, got, tt.harder)
		}
		if got := tt.d.Easier(); got != tt.easier {
			t.Errorf("%s.Easier() = %s, want %s", tt.d, got, tt.easier)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty(" HARD ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != DifficultyHard {
		t.Errorf("ParseDifficulty = %s, want hard", d)
	}
	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
