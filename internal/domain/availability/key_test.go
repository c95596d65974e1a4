package availability

import (
	"encoding/json"
	"errors"
	"testing"

	"meetmatch/internal/domain"
)

func TestDecode_RoundTrip(t *testing.T) {
	cases := []Key{
		{Day: "2024-01-15", Start: "09:00", End: "09:30"},
		{Day: "monday", Start: "23:30", End: "24:00"},
		{Day: "2024-12-31", Start: "00:00", End: "00:30"},
	}
	for _, want := range cases {
		t.Run(want.String(), func(t *testing.T) {
			got, err := Decode(Encode(want.Day, want.Start, want.End))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != want {
				t.Errorf("got %+v, want %+v", got, want)
			}
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, raw := range []string{"", "2024-01-15", "2024-01-15|09:00", "a|b|c|d", "|09:00|09:30", "2024-01-15||09:30"} {
		t.Run(raw, func(t *testing.T) {
			if _, err := Decode(raw); !errors.Is(err, domain.ErrMalformedKey) {
				t.Errorf("expected ErrMalformedKey, got %v", err)
			}
		})
	}
}

func TestDecodeLegacy(t *testing.T) {
	tests := []struct {
		raw     string
		want    Key
		wantErr bool
	}{
		{raw: "monday-09:00-09:30", want: Key{Day: "monday", Start: "09:00", End: "09:30"}},
		{raw: "2024-01-15-09:00-09:30", want: Key{Day: "2024-01-15", Start: "09:00", End: "09:30"}},
		{raw: "09:00-09:30", wantErr: true},
		{raw: "-09:00-09:30", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := DecodeLegacy(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrMalformedKey) {
					t.Fatalf("expected ErrMalformedKey, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKey_JSONMapKey(t *testing.T) {
	counts := map[Key]int{{Day: "2024-01-15", Start: "09:00", End: "09:30"}: 2}
	data, err := json.Marshal(counts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"2024-01-15|09:00|09:30":2}` {
		t.Errorf("unexpected json %s", data)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "24:00", want: 1440},
		{in: "24:30", wantErr: true},
		{in: "9:30", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "ab:cd", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidTime) {
					t.Fatalf("expected ErrInvalidTime, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseClock(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestGrid(t *testing.T) {
	if n := DefaultGrid.Len(); n != 34 {
		t.Errorf("default grid has %d cells, want 34", n)
	}
	cells := DefaultGrid.Cells()
	if cells[0] != (Cell{Start: "07:00", End: "07:30"}) {
		t.Errorf("first cell %+v", cells[0])
	}
	if last := cells[len(cells)-1]; last != (Cell{Start: "23:30", End: "24:00"}) {
		t.Errorf("last cell %+v", last)
	}

	if i, ok := DefaultGrid.Index(Cell{Start: "09:00", End: "09:30"}); !ok || i != 4 {
		t.Errorf("Index(09:00) = %d, %v", i, ok)
	}
	for _, c := range []Cell{{"06:30", "07:00"}, {"09:15", "09:45"}, {"09:00", "10:00"}} {
		if _, ok := DefaultGrid.Index(c); ok {
			t.Errorf("expected %+v to be off grid", c)
		}
	}

	if _, err := NewGrid("10:00", "09:00"); !errors.Is(err, domain.ErrInvalidTimeWindow) {
		t.Errorf("expected ErrInvalidTimeWindow, got %v", err)
	}
	if _, err := NewGrid("09:15", "10:00"); !errors.Is(err, domain.ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime, got %v", err)
	}
}

func TestKey_Validate(t *testing.T) {
	tests := []struct {
		key     Key
		wantErr bool
	}{
		{key: Key{Day: "2024-01-15", Start: "09:00", End: "09:30"}},
		{key: Key{Day: "2024-01-15", Start: "23:30", End: "24:00"}},
		{key: Key{Day: "monday", Start: "09:00", End: "09:30"}, wantErr: true},
		{key: Key{Day: "2024-01-15", Start: "09:00", End: "10:00"}, wantErr: true},
		{key: Key{Day: "2024-01-15", Start: "09:10", End: "09:40"}, wantErr: true},
		{key: Key{Day: "2024-01-15", Start: "", End: "09:30"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			err := tt.key.Validate()
			if tt.wantErr && !errors.Is(err, domain.ErrMalformedKey) {
				t.Errorf("expected ErrMalformedKey, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
