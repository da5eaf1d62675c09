package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	for name, tt := range map[string]struct {
		input  string
		opts   options
		expect string
	}{
		"pretty default": {
			input:  `{"b":[1,2],"a":null}`,
			opts:   options{indent: "  "},
			expect: "{\n  \"b\": [\n    1,\n    2\n  ],\n  \"a\": null\n}\n",
		},
		"compact": {
			input:  "{\n  \"a\": 1,\n  \"b\": true\n}",
			opts:   options{compact: true},
			expect: `{"a":1,"b":true}` + "\n",
		},
		"tab indent": {
			input:  `[1]`,
			opts:   options{indent: "\t"},
			expect: "[\n\t1\n]\n",
		},
		"query": {
			input:  `{"members":[{"name":"alice"},{"name":"bob"}]}`,
			opts:   options{compact: true, query: "members[*].name"},
			expect: `["alice","bob"]` + "\n",
		},
		"jsonc": {
			input:  "{\n  // trailing comma and comment\n  \"a\": 1,\n}",
			opts:   options{compact: true, jsonc: true},
			expect: `{"a":1}` + "\n",
		},
	} {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(strings.NewReader(tt.input), &out, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, out.String())
		})
	}
}

func TestRun_Errors(t *testing.T) {
	for name, tt := range map[string]struct {
		input string
		opts  options
	}{
		"malformed input": {input: `{"a":`, opts: options{compact: true}},
		"comments without jsonc": {
			input: "// nope\n{}",
			opts:  options{compact: true},
		},
		"bad query": {input: `{}`, opts: options{compact: true, query: "a["}},
	} {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(strings.NewReader(tt.input), &out, tt.opts)
			require.Error(t, err)
			assert.Zero(t, out.Len())
		})
	}
}
