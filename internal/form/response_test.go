package form

import "testing"

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantFinished bool
		wantProgress float64
		hasProgress  bool
		isObject     bool
	}{
		{"finished", `{"IsFinished": true, "Progress": 100}`, true, 100, true, true},
		{"in progress", `{"IsFinished": false, "Progress": 42.5}`, false, 42.5, true, true},
		{"solver output without flag", `{"numerical": [[0.1]], "analytic": [[0.1]]}`, false, 0, false, true},
		{"flag as string is ignored", `{"IsFinished": "true"}`, false, 0, false, true},
		{"flag as number is ignored", `{"IsFinished": 1}`, false, 0, false, true},
		{"progress of wrong type is ignored", `{"Progress": "half"}`, false, 0, false, true},
		{"array reply", `[1, 2, 3]`, false, 0, false, false},
		{"null reply", `null`, false, 0, false, false},
		{"malformed reply", `{"IsFinished": tru`, false, 0, false, false},
		{"empty reply", ``, false, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ParseResponse([]byte(tt.body))

			if resp.IsFinished != tt.wantFinished {
				t.Errorf("IsFinished = %v, want %v", resp.IsFinished, tt.wantFinished)
			}
			if (resp.Progress != nil) != tt.hasProgress {
				t.Fatalf("Progress present = %v, want %v", resp.Progress != nil, tt.hasProgress)
			}
			if tt.hasProgress && *resp.Progress != tt.wantProgress {
				t.Errorf("Progress = %v, want %v", *resp.Progress, tt.wantProgress)
			}
			if (resp.Fields != nil) != tt.isObject {
				t.Errorf("Fields present = %v, want %v", resp.Fields != nil, tt.isObject)
			}
			if string(resp.Raw) != tt.body {
				t.Errorf("Raw = %q, want %q", resp.Raw, tt.body)
			}
		})
	}
}
