package logfields

import (
	"errors"
	"testing"
	"time"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		got     string
		gotKey  string
	}{
		{"File", KeyFile, "a.json", File("a.json").Value.String(), File("a.json").Key},
		{"Source", KeySource, "/docs/features", Source("/docs/features").Value.String(), Source("/docs/features").Key},
		{"Dest", KeyDest, "/site/features", Dest("/site/features").Value.String(), Dest("/site/features").Key},
		{"BuildID", KeyBuildID, "b1", BuildID("b1").Value.String(), BuildID("b1").Key},
		{"Event", KeyEvent, "on_post_build", Event("on_post_build").Value.String(), Event("on_post_build").Key},
		{"Hook", KeyHook, "features", Hook("features").Value.String(), Hook("features").Key},
	}

	for _, tc := range cases {
		if tc.gotKey != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.gotKey)
		}
		if tc.got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %s", tc.name, tc.attrVal, tc.got)
		}
	}
}

func TestNumericAndErrorHelpers(t *testing.T) {
	if a := Count(3); a.Key != KeyCount || a.Value.Int64() != 3 {
		t.Fatalf("Count attr = %v", a)
	}
	if a := Bytes(42); a.Key != KeyBytes || a.Value.Int64() != 42 {
		t.Fatalf("Bytes attr = %v", a)
	}
	if a := Duration(1500 * time.Microsecond); a.Key != KeyDurationMS || a.Value.Float64() != 1.5 {
		t.Fatalf("Duration attr = %v", a)
	}
	if a := Error(nil); a.Value.String() != "" {
		t.Fatalf("Error(nil) = %v", a)
	}
	if a := Error(errors.New("boom")); a.Value.String() != "boom" {
		t.Fatalf("Error(boom) = %v", a)
	}
}
