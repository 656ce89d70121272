package knowledge

import "testing"

func TestCanCreateLesson(t *testing.T) {
	cases := []struct {
		name    string
		labels  []string
		blocked bool
	}{
		{"no topics", nil, true},
		{"only blank labels", []string{"  ", ""}, true},
		{"single placeholder", []string{DefaultLabel}, true},
		{"single legacy placeholder", []string{"Edit me 😊!"}, true},
		{"placeholder plus real topic", []string{DefaultLabel, "Algebra"}, false},
		{"real topics", []string{"Algebra", "Calculus"}, false},
		{"placeholder-like among many", []string{"Algebra", DefaultLabel}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanCreateLesson(tc.labels)
			if tc.blocked && err == nil {
				t.Error("expected lesson creation to be blocked")
			}
			if !tc.blocked && err != nil {
				t.Errorf("unexpected block: %v", err)
			}
		})
	}
}
