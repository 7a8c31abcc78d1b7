package i18n

import (
	"fmt"
	"testing"
)

func TestGet(t *testing.T) {
	if got := fmt.Sprintf(Get("ROOM_LABEL"), 3, 12); got != "Room [3,12]" {
		t.Errorf("formatted ROOM_LABEL = %q, want %q", got, "Room [3,12]")
	}
	if got := Get("LEGEND_WALL"); got != "wall" {
		t.Errorf("Get(LEGEND_WALL) = %q, want %q", got, "wall")
	}
	if got := Get("NOT_A_MESSAGE"); got != "NOT_A_MESSAGE" {
		t.Errorf("unknown id = %q, want it returned unchanged", got)
	}
}

func TestGet_ReturnsPlaceholdersUnformatted(t *testing.T) {
	if got := Get("ENTERED_ROOM"); got != "Entered room [%d,%d]" {
		t.Errorf("Get(ENTERED_ROOM) = %q, want the raw format string", got)
	}
}

func TestUse(t *testing.T) {
	defer Use(enPo)

	Use([]byte("msgid \"ROOM_LABEL\"\nmsgstr \"Raum [%d,%d]\"\n"))
	if got := fmt.Sprintf(Get("ROOM_LABEL"), 1, 2); got != "Raum [1,2]" {
		t.Errorf("formatted ROOM_LABEL after Use = %q, want %q", got, "Raum [1,2]")
	}
}
