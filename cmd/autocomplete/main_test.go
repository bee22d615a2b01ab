package main

import (
	"bytes"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	trie "github.com/sarthakjha889/go-autocomplete-dictionary"
)

const testDictionary = "hello\nhelp\nhelm\nhelix\nhell\n\nHelps\nworld\n"

func newTestFs(g *WithT) afero.Fs {
	fs := afero.NewMemMapFs()
	g.Expect(afero.WriteFile(fs, defaultDictionary, []byte(testDictionary), 0644)).To(Succeed())
	return fs
}

func run(fs afero.Fs, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(fs)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCommands(t *testing.T) {
	g := NewWithT(t)
	fs := newTestFs(g)

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "complete",
			args: []string{"complete", "hel"},
			want: "hell\nhelm\nhelp\nhelix\nhello\nhelps\n",
		},
		{
			name: "complete with max",
			args: []string{"complete", "HEL", "--max=2"},
			want: "hell\nhelm\n",
		},
		{
			name: "complete unknown prefix",
			args: []string{"complete", "xyz"},
			want: "",
		},
		{
			name: "contains word",
			args: []string{"contains", "Help"},
			want: "true\n",
		},
		{
			name: "contains prefix only",
			args: []string{"contains", "hel"},
			want: "false\n",
		},
		{
			name: "count",
			args: []string{"count"},
			want: "7\n",
		},
		{
			name: "add",
			args: []string{"add", "helmet", "HELP"},
			want: "helmet\tadded\nHELP\tduplicate\n8\n",
		},
		{
			name:    "add empty word",
			args:    []string{"add", ""},
			wantErr: true,
		},
		{
			name:    "missing dictionary",
			args:    []string{"count", "--dictionary=/nope.txt"},
			wantErr: true,
		},
		{
			name: "missing dictionary allowed",
			args: []string{"count", "--dictionary=/nope.txt", "--allow-empty"},
			want: "0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			got, _, err := run(fs, tt.args...)
			if tt.wantErr {
				g.Expect(err).To(HaveOccurred())
				return
			}
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(got).To(Equal(tt.want))
		})
	}
}

func TestMissingDictionaryIsLoadError(t *testing.T) {
	g := NewWithT(t)
	_, stderr, err := run(afero.NewMemMapFs(), "count")

	var loadErr *trie.LoadError
	g.Expect(err).To(BeAssignableToTypeOf(loadErr))
	g.Expect(err.Error()).To(ContainSubstring(defaultDictionary))
	// main reports the error once through cobra.CheckErr.
	g.Expect(stderr).To(BeEmpty())
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	g := NewWithT(t)
	fs := newTestFs(g)
	t.Setenv("AUTOCOMPLETE_MAX", "1")

	got, _, err := run(fs, "complete", "hel")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got).To(Equal("hell\n"))
}

func TestConfigFile(t *testing.T) {
	g := NewWithT(t)
	fs := afero.NewMemMapFs()
	g.Expect(afero.WriteFile(fs, "/etc/words", []byte("Jürgen\njulia\n"), 0644)).To(Succeed())
	g.Expect(afero.WriteFile(fs, "/etc/autocomplete.yaml", []byte("dictionary: /etc/words\nnormalise: true\n"), 0644)).To(Succeed())

	got, _, err := run(fs, "contains", "jurgen", "--config=/etc/autocomplete.yaml")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got).To(Equal("true\n"))
}

func TestVerbosityLogsLoad(t *testing.T) {
	g := NewWithT(t)
	fs := newTestFs(g)

	_, stderr, err := run(fs, "count", "--verbosity=1")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(stderr).To(ContainSubstring("loaded dictionary"))
	g.Expect(stderr).To(ContainSubstring(`"words"=7`))
}
