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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("bad arguments")
)

// scriptUsage lists the commands understood by ScriptRunner.Exec.
var scriptUsage = []string{
	"insert <key> <payload...>",
	"delete <key>",
	"get <key>",
	"inorder | preorder | postorder",
	"tree",
	"check",
	"stats",
	"len",
}

// ScriptRunner applies text commands to a RegionIndex and writes their
// results to out.
type ScriptRunner struct {
	index     *RegionIndex
	out       io.Writer
	keepGoing bool
}

func NewScriptRunner(index *RegionIndex, out io.Writer, keepGoing bool) *ScriptRunner {
	return &ScriptRunner{index: index, out: out, keepGoing: keepGoing}
}

// Run executes r line by line. Errors are reported with their line number;
// with keepGoing they are logged and the script continues.
func (sr *ScriptRunner) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	failed := 0
	for scanner.Scan() {
		lineNo++
		if err := sr.Exec(scanner.Text()); err != nil {
			err = fmt.Errorf("line %d: %w", lineNo, err)
			if !sr.keepGoing {
				return err
			}
			Log.Warnf("%s%v%s", Warning, err, Reset)
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed", failed, lineNo)
	}
	return nil
}

// Exec runs a single command line. Blank lines and '#' comments do nothing.
func (sr *ScriptRunner) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(args) == 0 {
		return nil
	}

	cmd := strings.ToLower(args[0])
	switch cmd {
	case "insert", "add":
		if len(args) < 3 {
			return fmt.Errorf("%w: usage: insert <key> <payload...>", ErrUsage)
		}
		key, err := parseKey(args[1])
		if err != nil {
			return err
		}
		payload := strings.Join(args[2:], " ")
		if sr.index.Insert(key, payload) {
			fmt.Fprintf(sr.out, "inserted %d\n", key)
		} else {
			fmt.Fprintf(sr.out, "key %d already present, ignored\n", key)
		}

	case "delete", "del", "rm":
		if len(args) != 2 {
			return fmt.Errorf("%w: usage: delete <key>", ErrUsage)
		}
		key, err := parseKey(args[1])
		if err != nil {
			return err
		}
		if sr.index.Delete(key) {
			fmt.Fprintf(sr.out, "deleted %d\n", key)
		} else {
			fmt.Fprintf(sr.out, "key %d not found\n", key)
		}

	case "get", "search":
		if len(args) != 2 {
			return fmt.Errorf("%w: usage: get <key>", ErrUsage)
		}
		key, err := parseKey(args[1])
		if err != nil {
			return err
		}
		if payload, ok := sr.index.Lookup(key); ok {
			fmt.Fprintln(sr.out, formatEntry(key, payload))
		} else {
			fmt.Fprintf(sr.out, "key %d not found\n", key)
		}

	case "inorder", "preorder", "postorder":
		order, _ := ParseOrder(cmd)
		for _, l := range sr.index.Listing(order) {
			fmt.Fprintln(sr.out, l)
		}

	case "tree":
		fmt.Fprint(sr.out, sr.index.Shape(true))

	case "check":
		if err := sr.index.Check(); err != nil {
			return err
		}
		fmt.Fprintf(sr.out, "ok: %d regions, height %d\n", sr.index.Len(), sr.index.Height())

	case "stats":
		printer{w: sr.out}.stats(sr.index.Stats())

	case "len", "count":
		fmt.Fprintln(sr.out, sr.index.Len())

	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, args[0])
	}
	return nil
}

func parseKey(s string) (int, error) {
	key, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: key %q is not an integer", ErrUsage, s)
	}
	return key, nil
}
