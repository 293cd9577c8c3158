package token

import "testing"

func TestLocFormat(t *testing.T) {
	got := Loc{Start: 0, Len: 1}.Format("12345", "numbers", "one")
	want := "numbers: 12345\n" +
		"         ^\n" +
		"         one"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	got = Loc{Start: 2, Len: 2}.Format("12345", "numbers", "hey look\n3+4=7")
	want = "numbers: 12345\n" +
		"           ^^\n" +
		"           hey look\n" +
		"           3+4=7"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	got = Loc{Start: 4, Len: 1}.Format("abcde", "m", "")
	want = "m: abcde\n" +
		"       ^"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}
