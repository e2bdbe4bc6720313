// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(keepGoing bool) (*ScriptRunner, *bytes.Buffer) {
	var out bytes.Buffer
	return NewScriptRunner(NewRegionIndex(newDefaultConfig()), &out, keepGoing), &out
}

func TestScriptRunnerCommands(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{
			name:   "insert and list",
			script: "insert 10 \"Region A\"\ninsert 5 Region C\ninorder\n",
			want:   "inserted 10\ninserted 5\nKey: 5, Data: Region C\nKey: 10, Data: Region A\n",
		},
		{
			name:   "duplicate insert keeps first payload",
			script: "insert 1 first\ninsert 1 second\nget 1\n",
			want:   "inserted 1\nkey 1 already present, ignored\nKey: 1, Data: first\n",
		},
		{
			name:   "delete present and absent",
			script: "insert 3 c\ndelete 3\ndelete 3\nget 3\nlen\n",
			want:   "inserted 3\ndeleted 3\nkey 3 not found\nkey 3 not found\n0\n",
		},
		{
			name:   "comments and blank lines",
			script: "# setup\n\n   \ninsert -2 'minus two'\npostorder\n",
			want:   "inserted -2\nKey: -2, Data: minus two\n",
		},
		{
			name:   "rotation stats",
			script: "insert 30 a\ninsert 20 b\ninsert 10 c\npreorder\nstats\ncheck\n",
			want: "inserted 30\ninserted 20\ninserted 10\n" +
				"Key: 20, Data: b\nKey: 10, Data: c\nKey: 30, Data: a\n" +
				"rotations: left=0 right=1 total=1\n" +
				"ok: 3 regions, height 2\n",
		},
		{
			name:   "tree shape",
			script: "insert 1 x\ntree\n",
			want:   "inserted 1\n|------+ 1 → \"x\" h=1 +0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, out := newTestRunner(false)
			require.NoError(t, runner.Run(strings.NewReader(tt.script)))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestScriptRunnerErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{line: "frobnicate 1", want: ErrUnknownCommand},
		{line: "insert 1", want: ErrUsage},
		{line: "insert one payload", want: ErrUsage},
		{line: "delete", want: ErrUsage},
		{line: "get 1 2", want: ErrUsage},
		{line: "insert 1 \"unterminated", want: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			runner, _ := newTestRunner(false)
			assert.ErrorIs(t, runner.Exec(tt.line), tt.want)
		})
	}
}

func TestScriptRunnerStopsAtFirstError(t *testing.T) {
	runner, out := newTestRunner(false)
	err := runner.Run(strings.NewReader("insert 1 a\nbogus\ninsert 2 b\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, "inserted 1\n", out.String())
}

func TestScriptRunnerKeepGoing(t *testing.T) {
	setupLogging(&bytes.Buffer{}, false)
	runner, out := newTestRunner(true)
	err := runner.Run(strings.NewReader("insert 1 a\nbogus\ninsert 2 b\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 lines failed")
	assert.Equal(t, "inserted 1\ninserted 2\n", out.String())
}

func TestScriptRunnerLongLine(t *testing.T) {
	runner, out := newTestRunner(false)
	payload := strings.Repeat("x", 200*1024)
	require.NoError(t, runner.Run(strings.NewReader("insert 7 "+payload+"\nlen\n")))

	assert.Equal(t, "inserted 7\n1\n", out.String())
	got, ok := runner.index.Lookup(7)
	require.True(t, ok)
	assert.Len(t, got, len(payload))
}
