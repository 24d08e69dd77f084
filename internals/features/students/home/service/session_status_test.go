package service

import (
	"strings"
	"testing"

	"studenthome_backend/internals/constants"
	"studenthome_backend/internals/features/students/home/dto"
)

func TestStudentStatusForSession(t *testing.T) {
	tests := []struct {
		name      string
		flags     dto.SessionFlags
		submitted bool
		want      string
	}{
		{"open submitted", dto.SessionFlags{Opened: true}, true, constants.StatusSubmitted},
		{"open pending", dto.SessionFlags{Opened: true}, false, constants.StatusPending},
		{"open wins over published", dto.SessionFlags{Opened: true, Published: true}, false, constants.StatusPending},
		{"awaiting", dto.SessionFlags{WaitingToOpen: true}, false, constants.StatusAwaiting},
		{"awaiting ignores submission", dto.SessionFlags{WaitingToOpen: true}, true, constants.StatusAwaiting},
		{"awaiting wins over published", dto.SessionFlags{WaitingToOpen: true, Published: true}, false, constants.StatusAwaiting},
		{"published", dto.SessionFlags{Closed: true, Published: true}, true, constants.StatusPublished},
		{"closed", dto.SessionFlags{Closed: true}, true, constants.StatusClosed},
		{"grace period reads closed", dto.SessionFlags{}, false, constants.StatusClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StudentStatusForSession(tt.flags, tt.submitted); got != tt.want {
				t.Errorf("StudentStatusForSession = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStudentHoverMessageForSession(t *testing.T) {
	bases := []string{
		constants.TooltipStudentSessionStatusAwaiting,
		constants.TooltipStudentSessionStatusSubmitted,
		constants.TooltipStudentSessionStatusPending,
	}

	// every combination of the four inputs that matter
	for mask := 0; mask < 16; mask++ {
		flags := dto.SessionFlags{
			WaitingToOpen: mask&1 != 0,
			Closed:        mask&2 != 0,
			Published:     mask&4 != 0,
		}
		submitted := mask&8 != 0

		got := StudentHoverMessageForSession(flags, submitted)

		wantBase := constants.TooltipStudentSessionStatusPending
		switch {
		case flags.WaitingToOpen:
			wantBase = constants.TooltipStudentSessionStatusAwaiting
		case submitted:
			wantBase = constants.TooltipStudentSessionStatusSubmitted
		}
		if !strings.HasPrefix(got, wantBase) {
			t.Errorf("mask %04b: tooltip %q does not start with %q", mask, got, wantBase)
		}

		found := 0
		for _, b := range bases {
			if strings.Contains(got, b) {
				found++
			}
		}
		if found != 1 {
			t.Errorf("mask %04b: tooltip %q contains %d base messages, want 1", mask, got, found)
		}

		if has := strings.Contains(got, constants.TooltipStudentSessionStatusClosed); has != flags.Closed {
			t.Errorf("mask %04b: closed suffix present=%v, want %v", mask, has, flags.Closed)
		}
		if has := strings.Contains(got, constants.TooltipStudentSessionStatusPublished); has != flags.Published {
			t.Errorf("mask %04b: published suffix present=%v, want %v", mask, has, flags.Published)
		}
	}
}

func TestHoverMessageSuffixOrder(t *testing.T) {
	got := StudentHoverMessageForSession(dto.SessionFlags{Closed: true, Published: true}, true)
	want := constants.TooltipStudentSessionStatusSubmitted +
		constants.TooltipStudentSessionStatusClosed +
		constants.TooltipStudentSessionStatusPublished
	if got != want {
		t.Errorf("tooltip = %q, want %q", got, want)
	}
}
