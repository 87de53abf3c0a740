package domain

import "testing"

func TestParseLocation_WellFormed(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		lat, lng float64
	}{
		{"plain", "12.9,77.6", 12.9, 77.6},
		{"whitespace", "  12.9 , 77.6  ", 12.9, 77.6},
		{"negative", "-33.87,151.21", -33.87, 151.21},
		{"integers", "20,0", 20, 0},
		{"zeroes", "0,0", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseLocation(tt.raw)
			if p == nil {
				t.Fatalf("ParseLocation(%q) = nil, want point", tt.raw)
			}
			if p.Lat != tt.lat || p.Lng != tt.lng {
				t.Errorf("ParseLocation(%q) = (%v, %v), want (%v, %v)", tt.raw, p.Lat, p.Lng, tt.lat, tt.lng)
			}
		})
	}
}

func TestParseLocation_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"one token", "12.9"},
		{"three tokens", "12.9,77.6,100"},
		{"non-numeric lat", "abc,77.6"},
		{"non-numeric lng", "12.9,xyz"},
		{"only comma", ","},
		{"trailing comma", "12.9,77.6,"},
		{"nan", "NaN,77.6"},
		{"inf", "12.9,Inf"},
		{"free text", "Bangalore, India somewhere"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := ParseLocation(tt.raw); p != nil {
				t.Errorf("ParseLocation(%q) = %+v, want nil", tt.raw, p)
			}
		})
	}
}
