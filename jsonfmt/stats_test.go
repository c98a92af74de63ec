// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package jsonfmt

import "testing"

func TestSummarizeShapes(t *testing.T) {
	arr, perr := Parse(`[1,2,3]`)
	if perr != nil {
		t.Fatalf("Parse: %v", perr)
	}
	if st := Summarize(arr, `[1,2,3]`); st.Shape != "3 items" {
		t.Errorf("array shape = %q, want %q", st.Shape, "3 items")
	}

	obj, perr := Parse(`{"a":1,"b":2}`)
	if perr != nil {
		t.Fatalf("Parse: %v", perr)
	}
	if st := Summarize(obj, `{"a":1,"b":2}`); st.Shape != "2 properties" {
		t.Errorf("object shape = %q, want %q", st.Shape, "2 properties")
	}

	st := Summarize("hello", `"hello"`)
	if st.Shape != "" {
		t.Errorf("scalar shape = %q, want empty", st.Shape)
	}
	if st.Bytes != len(`"hello"`) {
		t.Errorf("scalar bytes = %d, want %d", st.Bytes, len(`"hello"`))
	}
}

func TestSummarizeCountsUTF8Bytes(t *testing.T) {
	compact := `"héllo"`
	st := Summarize("héllo", compact)
	if st.Bytes != len(compact) {
		t.Errorf("bytes = %d, want %d (é is two bytes)", st.Bytes, len(compact))
	}
}

func TestHumanSize(t *testing.T) {
	cases := []struct {
		bytes int
		want  string
	}{
		{0, "0 bytes"},
		{512, "512 bytes"},
		{1024, "1024 bytes"},
		{1025, "1.0 KB"},
		{1536, "1.5 KB"},
		{10240, "10.0 KB"},
	}
	for _, tc := range cases {
		if got := (Stats{Bytes: tc.bytes}).HumanSize(); got != tc.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestStatsString(t *testing.T) {
	if got := (Stats{Shape: "3 items", Bytes: 7}).String(); got != "3 items, 7 bytes" {
		t.Errorf("String() = %q", got)
	}
	if got := (Stats{Bytes: 7}).String(); got != "7 bytes" {
		t.Errorf("scalar String() = %q", got)
	}
}
