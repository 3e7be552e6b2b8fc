package hebrew

import "testing"

func TestCleanDOSText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "footnote markers stripped",
			in:   "ויאמר >3< אל משה >3ט< לאמר",
			want: "ויאמר אל משה לאמר",
		},
		{
			name: "printer control words stripped",
			in:   "BNARF A 12* בראשית ברא",
			want: "בראשית ברא",
		},
		{
			name: "dot formatting lines dropped",
			in:   ".PL 60\nבראשית ברא אלקים",
			want: "בראשית ברא אלקים",
		},
		{
			name: "latin and numbers removed",
			in:   "page 12 בראשית 3.5 ברא",
			want: "בראשית ברא",
		},
		{
			name: "non hebrew lines dropped",
			in:   "HELLO WORLD\nשלום עולם",
			want: "שלום עולם",
		},
		{
			name: "empty lines preserved as breaks",
			in:   "שורה אחת\n\nשורה שתים",
			want: "שורה אחת\n\nשורה שתים",
		},
		{
			name: "dashes and asterisks removed",
			in:   "--- בראשית *** ברא ---",
			want: "בראשית ברא",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanDOSText(tc.in); got != tc.want {
				t.Errorf("CleanDOSText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestContainsHebrew(t *testing.T) {
	if !ContainsHebrew("abc ש def") {
		t.Error("expected Hebrew detection in mixed text")
	}
	if ContainsHebrew("abc 123") {
		t.Error("did not expect Hebrew in latin text")
	}
}
