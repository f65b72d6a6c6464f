package utils

import (
	"fmt"
	"math/rand"

	"github.com/staffdesk/shift-scheduler/internal/domain"
)

var firstNames = []string{
	"Alice", "Ben", "Carla", "Derek", "Elena", "Farid", "Grace", "Hugo",
	"Ingrid", "Jonas", "Kira", "Liam", "Mona", "Nadia", "Omar", "Priya",
	"Quinn", "Rosa", "Sam", "Tara",
}

var lastNames = []string{
	"Adams", "Becker", "Chen", "Dawson", "Eriksen", "Fischer", "Garcia",
	"Hassan", "Ivanov", "Jensen", "Kowalski", "Larsen", "Meyer", "Nguyen",
	"Okafor", "Patel", "Quintero", "Rossi", "Silva", "Tanaka",
}

func GenerateRandomEmployeeName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

func GenerateRandomPhone() string {
	return fmt.Sprintf("555-%04d", rand.Intn(10000))
}

// GenerateRandomShift produces a daytime shift of one to eight whole hours
// on the given date. Shift ids are expected to be assigned by the caller.
func GenerateRandomShift(shiftID, date string) domain.Shift {
	startHour := rand.Intn(14) + 6 // 06:00 .. 19:00
	length := rand.Intn(8) + 1
	endHour := startHour + length
	if endHour > 23 {
		endHour = 23
	}

	return domain.Shift{
		ShiftID:   shiftID,
		Date:      date,
		StartTime: fmt.Sprintf("%02d:00", startHour),
		EndTime:   fmt.Sprintf("%02d:00", endHour),
	}
}
