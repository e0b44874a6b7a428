// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"os"
	"testing"
)

func TestAlive(t *testing.T) {
	tests := []struct {
		name string
		pid  int
		want bool
	}{
		{"self", os.Getpid(), true},
		{"beyond pid_max", 0x7ffffffe, false},
		{"zero", 0, false},
		{"negative", -1, false},
	}
	for _, test := range tests {
		if got := Alive(test.pid); got != test.want {
			t.Errorf("Alive(%s pid %d) = %t, want %t", test.name, test.pid, got, test.want)
		}
	}
}
