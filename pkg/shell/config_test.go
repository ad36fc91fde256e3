package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ecalc/ecalc/pkg/env"
	"github.com/ecalc/ecalc/pkg/must"
	"github.com/ecalc/ecalc/pkg/testutil"
)

func TestRCPath(t *testing.T) {
	testutil.Setenv(t, env.XDG_CONFIG_HOME, "/xdg")
	if got, _ := RCPath(); got != filepath.Join("/xdg", "ecalc", "rc.yaml") {
		t.Errorf("RCPath() = %q with XDG_CONFIG_HOME set", got)
	}

	testutil.Unsetenv(t, env.XDG_CONFIG_HOME)
	home := testutil.TempDir(t)
	testutil.Setenv(t, env.HOME, home)
	if got, _ := RCPath(); got != filepath.Join(home, ".config", "ecalc", "rc.yaml") {
		t.Errorf("RCPath() = %q without XDG_CONFIG_HOME", got)
	}
}

var loadConfigTests = []struct {
	name    string
	content string
	want    *Config
	wantErr string
}{
	{
		name:    "empty file",
		content: "",
		want:    DefaultConfig(),
	},
	{
		name:    "all keys",
		content: "prompt: 'calc> '\nprecision: 3\nbasic-editor: true\n",
		want:    &Config{Prompt: "calc> ", Precision: 3, BasicEditor: true},
	},
	{
		name:    "missing keys take default values",
		content: "precision: 0\n",
		want:    &Config{Prompt: "> ", Precision: 0},
	},
	{
		name:    "unknown key",
		content: "colour: red\n",
		wantErr: "field colour not found",
	},
	{
		name:    "wrong type",
		content: "precision: many\n",
		wantErr: "cannot unmarshal",
	},
	{
		name:    "precision out of range",
		content: "precision: 18\n",
		wantErr: "precision must be between 0 and 17, got 18",
	},
	{
		name:    "negative precision",
		content: "precision: -1\n",
		wantErr: "precision must be between 0 and 17, got -1",
	},
}

func TestLoadConfig(t *testing.T) {
	testutil.InTempDir(t)
	for _, test := range loadConfigTests {
		t.Run(test.name, func(t *testing.T) {
			must.WriteFile("rc.yaml", test.content)
			cfg, err := LoadConfig("rc.yaml")
			if test.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), test.wantErr) {
					t.Errorf("got error %v, want error containing %q", err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("got error %v", err)
			}
			if diff := cmp.Diff(test.want, cfg); diff != "" {
				t.Errorf("config (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfig_NonexistentFile(t *testing.T) {
	testutil.InTempDir(t)
	_, err := LoadConfig("rc.yaml")
	if !os.IsNotExist(err) {
		t.Errorf("got error %v, want a not-exist error", err)
	}
}
