package manifest

import "testing"

func TestCheckMinVersion(t *testing.T) {
	tests := []struct {
		name       string
		minVersion string
		current    string
		wantErr    bool
	}{
		{
			name:       "no requirement",
			minVersion: "",
			current:    "0.1.0",
		},
		{
			name:       "current newer",
			minVersion: "1.0.0",
			current:    "1.2.0",
		},
		{
			name:       "current equal",
			minVersion: "1.2.0",
			current:    "1.2.0",
		},
		{
			name:       "v prefixes tolerated",
			minVersion: "v1.0.0",
			current:    "v1.1.0",
		},
		{
			name:       "current older",
			minVersion: "2.0.0",
			current:    "1.9.9",
			wantErr:    true,
		},
		{
			name:       "dev build skips the check",
			minVersion: "99.0.0",
			current:    "dev",
		},
		{
			name:       "empty current skips the check",
			minVersion: "99.0.0",
			current:    "",
		},
		{
			name:       "unparseable requirement",
			minVersion: "not-a-version",
			current:    "1.0.0",
			wantErr:    true,
		},
		{
			name:       "unparseable current",
			minVersion: "1.0.0",
			current:    "yesterday",
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manifest{Name: "x", MinVersion: tt.minVersion}
			err := m.CheckMinVersion(tt.current)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckMinVersion(%q) with min %q: error = %v, wantErr %v",
					tt.current, tt.minVersion, err, tt.wantErr)
			}
		})
	}
}
