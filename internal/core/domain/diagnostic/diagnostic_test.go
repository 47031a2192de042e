package diagnostic

import "testing"

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		name    string
		want    Verbosity
		wantErr bool
	}{
		{"none", Suppressed, false},
		{"silent", Suppressed, false},
		{"", WarningsOnly, false},
		{"warn", WarningsOnly, false},
		{" WARNING ", WarningsOnly, false},
		{"debug", Verbose, false},
		{"Verbose", Verbose, false},
		{"trace", WarningsOnly, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVerbosity(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVerbosity(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseVerbosity(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestVerbosity_Allows(t *testing.T) {
	tests := []struct {
		verbosity Verbosity
		level     Level
		want      bool
	}{
		{Suppressed, LevelWarn, false},
		{Suppressed, LevelDebug, false},
		{WarningsOnly, LevelWarn, true},
		{WarningsOnly, LevelInfo, false},
		{WarningsOnly, LevelDebug, false},
		{Verbose, LevelWarn, true},
		{Verbose, LevelInfo, true},
		{Verbose, LevelDebug, true},
	}

	for _, tt := range tests {
		if got := tt.verbosity.Allows(tt.level); got != tt.want {
			t.Errorf("%v.Allows(%v) = %v, want %v", tt.verbosity, tt.level, got, tt.want)
		}
	}
}

func TestVerbosity_StringRoundTrip(t *testing.T) {
	for _, v := range []Verbosity{Suppressed, WarningsOnly, Verbose} {
		got, err := ParseVerbosity(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVerbosity(%q) = %v, %v; want %v", v.String(), got, err, v)
		}
	}
}
