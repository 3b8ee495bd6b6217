package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/typecodec/internal/app"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want app.Config
	}{
		{
			name: "positional path with defaults",
			args: []string{"defs"},
			want: app.Config{
				DefinitionsPath: "defs", Resolver: "wdl", ResolverNamespace: "/",
				ResolverTimeout: 10 * time.Second, Concurrency: 1, LogFormat: "json", LogLevel: "info",
			},
		},
		{
			name: "shorthand path and resolver settings",
			args: []string{
				"-d", "defs.hcl", "-action", "align", "-literal", "{1}", "-resolver", "socketio",
				"-resolver-url", "http://localhost:3000/socket.io/", "-resolver-namespace", "/types",
				"-resolver-timeout", "2s", "-resolver-insecure", "-concurrency", "4",
				"-log-format", "TEXT", "-log-level", "Debug",
			},
			want: app.Config{
				DefinitionsPath: "defs.hcl", Action: "align", Literal: "{1}", Resolver: "socketio",
				ResolverURL: "http://localhost:3000/socket.io/", ResolverNamespace: "/types",
				ResolverTimeout: 2 * time.Second, InsecureSkipVerify: true, Concurrency: 4,
				LogFormat: "text", LogLevel: "debug",
			},
		},
		{
			name: "descriptor only",
			args: []string{"-descriptor", "t2is", "-literal", `{7, "stuff"}`},
			want: app.Config{
				Descriptor: "t2is", Literal: `{7, "stuff"}`, Resolver: "wdl", ResolverNamespace: "/",
				ResolverTimeout: 10 * time.Second, Concurrency: 1, LogFormat: "json", LogLevel: "info",
			},
		},
		{
			name: "defs flag wins over positional",
			args: []string{"-defs", "a", "b"},
			want: app.Config{
				DefinitionsPath: "a", Resolver: "wdl", ResolverNamespace: "/",
				ResolverTimeout: 10 * time.Second, Concurrency: 1, LogFormat: "json", LogLevel: "info",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, exit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			require.False(t, exit)
			require.Equal(t, tc.want, *cfg)
		})
	}
}

func TestParse_UsageErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"-nope"}, wantMsg: "flag provided but not defined: -nope"},
		{name: "log format", args: []string{"-log-format", "xml", "defs"}, wantMsg: "invalid log-format: must be 'text' or 'json'"},
		{name: "log level", args: []string{"-log-level", "trace", "defs"}, wantMsg: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"},
		{name: "concurrency", args: []string{"-concurrency", "0", "defs"}, wantMsg: "invalid concurrency: must be at least 1"},
		{name: "literal without target", args: []string{"-literal", "1", "defs"}, wantMsg: "a literal needs a descriptor or an action to parse against"},
		{name: "action without definitions", args: []string{"-descriptor", "i", "-action", "x"}, wantMsg: "an action can only be selected from a definitions path"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Equal(t, tc.wantMsg, exitErr.Message)
		})
	}
}

func TestParse_UsageAndHelp(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{}, {"-h"}} {
		out := &bytes.Buffer{}
		cfg, exit, err := Parse(args, out)
		require.NoError(t, err)
		require.True(t, exit)
		require.Nil(t, cfg)
		require.Contains(t, out.String(), "Usage:")
		require.Contains(t, out.String(), "'socketio', 'wdl'")
	}
}
