package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("LOG_SERVICE", " scorebook-api ")
	log := New().Prefix("LOG_")

	if got := log.Get("SERVICE", "x"); got != "scorebook-api" {
		t.Fatalf("Get(SERVICE) = %q, want %q", got, "scorebook-api")
	}
	if got := log.Get("MISSING", "def"); got != "def" {
		t.Fatalf("Get(MISSING) = %q, want %q", got, "def")
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("B_")
	t.Setenv("B_T1", "true")
	t.Setenv("B_T2", "1")
	t.Setenv("B_T3", " YES ")
	t.Setenv("B_F1", "off")

	tests := []struct {
		key  string
		def  bool
		want bool
	}{
		{"T1", false, true},
		{"T2", false, true},
		{"T3", false, true},
		{"F1", true, false},
		{"MISSING", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := c.GetBool(tt.key, tt.def); got != tt.want {
				t.Fatalf("GetBool(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("I_")
	t.Setenv("I_OK", " 42 ")
	t.Setenv("I_NEG", "-5")
	t.Setenv("I_BAD", "12x")

	tests := []struct {
		key       string
		def, want int
	}{
		{"OK", 0, 42},
		{"NEG", 3, 3},
		{"BAD", 9, 9},
		{"MISSING", 11, 11},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := c.GetInt(tt.key, tt.def); got != tt.want {
				t.Fatalf("GetInt(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}
