// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// each group in the stack is the set of preferences specified by a single
// -prefs argument on the command line. preferences are removed from the group
// as they are used.
var commandLineStack []map[string]string

// SizeCommandLineStack returns the number of groups in the stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack parses a preferences string and adds it to the stack
// as a new group. The string is a series of key/value pairs separated by
// semi-colons. The key and value are separated by a double colon:
//
//	run.maxsteps::1000; run.trace::true
//
// Malformed key/value pairs are ignored.
func PushCommandLineStack(prefs string) {
	grp := make(map[string]string)

	for _, kv := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(kv, "::")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		grp[k] = strings.TrimSpace(v)
	}

	commandLineStack = append(commandLineStack, grp)
}

// PopCommandLineStack removes the most recent group from the stack. Returns
// the preferences in the group that were never used, in the same format as
// accepted by PushCommandLineStack(), sorted by key.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	grp := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(grp))
	for k := range grp {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	unused := make([]string, 0, len(keys))
	for _, k := range keys {
		unused = append(unused, fmt.Sprintf("%s::%s", k, grp[k]))
	}

	return strings.Join(unused, "; ")
}

// GetCommandLinePref returns the value for the key in the most recent group.
// The key is removed from the group.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	grp := commandLineStack[len(commandLineStack)-1]
	if v, ok := grp[key]; ok {
		delete(grp, key)
		return true, v
	}

	return false, nil
}
