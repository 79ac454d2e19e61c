package process

// Notes:
// - Real kill behavior is covered by the browser integration tests; unit
//   tests only use PIDs that never reach the syscall or match no process.

import (
	"errors"
	"testing"
)

func TestKillProcessGroup_RejectsReservedPIDs(t *testing.T) {
	t.Parallel()

	for _, pid := range []int{-5, 0, 1} {
		if err := KillProcessGroup(pid); !errors.Is(err, ErrInvalidPID) {
			t.Errorf("KillProcessGroup(%d) = %v, want ErrInvalidPID", pid, err)
		}
	}
}

func TestKillProcessGroup_MissingProcess(t *testing.T) {
	t.Parallel()

	err := KillProcessGroup(999999999)
	if err == nil {
		t.Error("KillProcessGroup(missing) = nil, want an error")
	}
	if errors.Is(err, ErrInvalidPID) {
		t.Error("a large PID should reach the platform kill, not be rejected")
	}
}
