package probing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// TCPStates is the allow-list of connection state names, in report order.
var TCPStates = []string{
	"ESTABLISHED",
	"SYN_SENT",
	"SYN_RECV",
	"FIN_WAIT1",
	"FIN_WAIT2",
	"TIME_WAIT",
	"CLOSE_WAIT",
	"LAST_ACK",
	"LISTEN",
	"CLOSING",
	"CLOSED",
}

// kernel tcp_states.h numbering as printed in the st column of /proc/net/tcp
var procTCPStates = map[string]string{
	"01": "ESTABLISHED",
	"02": "SYN_SENT",
	"03": "SYN_RECV",
	"04": "FIN_WAIT1",
	"05": "FIN_WAIT2",
	"06": "TIME_WAIT",
	"07": "CLOSED",
	"08": "CLOSE_WAIT",
	"09": "LAST_ACK",
	"0A": "LISTEN",
	"0B": "CLOSING",
}

// IsTCPState reports whether name is an allow-listed state.
func IsTCPState(name string) bool {
	for _, s := range TCPStates {
		if s == name {
			return true
		}
	}
	return false
}

// StateCount is the number of TCP connections observed in one state.
type StateCount struct {
	State string
	Count int64
}

// ParseStateCounts parses "count state" lines as printed by `uniq -c`.
// Lines that do not have exactly two fields, a non-negative count and an
// allow-listed state are dropped.
func ParseStateCounts(output string) []StateCount {
	var counts []StateCount
	for _, line := range SplitLines(output) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		n, ok := ParseInt64(fields[0])
		if !ok || n < 0 {
			continue
		}
		if !IsTCPState(fields[1]) {
			continue
		}
		counts = append(counts, StateCount{State: fields[1], Count: n})
	}
	return counts
}

// CommandSource counts TCP states by running a shell pipeline.
type CommandSource struct {
	Runner  Runner
	Command string
}

func (s *CommandSource) Name() string { return "command" }

func (s *CommandSource) StateCounts(ctx context.Context) ([]StateCount, error) {
	out, err := s.Runner.Run(ctx, s.Command)
	if err != nil {
		return nil, err
	}
	return ParseStateCounts(out), nil
}

// ProcNetSource counts TCP states from /proc/net/tcp and /proc/net/tcp6.
type ProcNetSource struct {
	Dir string
}

func (s *ProcNetSource) Name() string { return "procfs" }

// StateCounts fails only when the IPv4 table is unreadable. A missing IPv6
// table means IPv6 is disabled.
func (s *ProcNetSource) StateCounts(_ context.Context) ([]StateCount, error) {
	v4, err := File(filepath.Join(s.Dir, "tcp"))
	if err != nil {
		return nil, err
	}

	v6, err := File(filepath.Join(s.Dir, "tcp6"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return ParseProcNetTCP(v4, v6), nil
}

// countProcNetTCP tallies the st column of a /proc/net/tcp table.
func countProcNetTCP(table string, totals map[string]int64) {
	for _, line := range SplitLines(table) {
		fields := strings.Fields(line)
		if len(fields) < 4 || !strings.HasSuffix(fields[0], ":") {
			continue
		}
		state, ok := procTCPStates[strings.ToUpper(fields[3])]
		if !ok {
			continue
		}
		totals[state]++
	}
}

func orderedCounts(totals map[string]int64) []StateCount {
	var counts []StateCount
	for _, state := range TCPStates {
		if n := totals[state]; n > 0 {
			counts = append(counts, StateCount{State: state, Count: n})
		}
	}
	return counts
}

// ParseProcNetTCP counts states across /proc/net/tcp style tables.
func ParseProcNetTCP(tables ...string) []StateCount {
	totals := make(map[string]int64)
	for _, table := range tables {
		countProcNetTCP(table, totals)
	}
	return orderedCounts(totals)
}
