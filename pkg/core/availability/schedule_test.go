package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SparseDayArray(t *testing.T) {
	entries := []DaySlots{
		{DayOfWeek: "Monday", Slots: []TimeSlot{{Start: "09:00", End: "17:00"}}},
		{DayOfWeek: "Wednesday", Slots: []TimeSlot{
			{Start: "08:00", End: "12:00"},
			{Start: "13:00", End: "17:00"},
		}},
	}

	sched, unrecognized := Load(entries)

	assert.Empty(t, unrecognized)
	assert.Len(t, sched.Slots(Monday), 1)
	assert.Len(t, sched.Slots(Wednesday), 2)

	// Days absent from the input are present but empty
	assert.Empty(t, sched.Slots(Tuesday))
	assert.Empty(t, sched.Slots(Sunday))
}

func TestLoad_UnrecognizedDayNames(t *testing.T) {
	entries := []DaySlots{
		{DayOfWeek: "Monday", Slots: []TimeSlot{{Start: "09:00", End: "17:00"}}},
		{DayOfWeek: "Funday", Slots: []TimeSlot{{Start: "10:00", End: "11:00"}}},
		{DayOfWeek: "monday", Slots: []TimeSlot{{Start: "10:00", End: "11:00"}}},
	}

	sched, unrecognized := Load(entries)

	require.Len(t, unrecognized, 2)
	assert.Equal(t, "Funday", unrecognized[0].DayOfWeek)
	assert.Equal(t, "monday", unrecognized[1].DayOfWeek)

	// Only the canonical entry lands in a day bucket
	assert.Len(t, sched.Slots(Monday), 1)
}

func TestSerialize_OmitsEmptyDaysInCanonicalOrder(t *testing.T) {
	var sched WeekSchedule
	sched.AddSlot(Friday)
	sched.AddSlot(Monday)
	sched.AddSlot(Wednesday)
	sched.ClearDay(Wednesday)

	entries := sched.Serialize()

	require.Len(t, entries, 2)
	assert.Equal(t, "Monday", entries[0].DayOfWeek)
	assert.Equal(t, "Friday", entries[1].DayOfWeek)
}

func TestSerialize_LoadRoundTrip(t *testing.T) {
	var sched WeekSchedule
	sched.AddSlot(Monday)
	sched.UpdateSlot(Monday, 0, FieldStart, "07:30")
	sched.UpdateSlot(Monday, 0, FieldEnd, "15:30")
	sched.AddSlot(Saturday)

	reloaded, unrecognized := Load(sched.Serialize())

	assert.Empty(t, unrecognized)
	for _, day := range Weekdays {
		assert.Equal(t, sched.Slots(day), reloaded.Slots(day), "day %s", day)
	}
}

func TestAddSlot_AppendsDefaultWithoutValidation(t *testing.T) {
	var sched WeekSchedule
	sched.AddSlot(Tuesday)
	sched.AddSlot(Tuesday)

	slots := sched.Slots(Tuesday)
	require.Len(t, slots, 2)
	assert.Equal(t, TimeSlot{Start: "09:00", End: "17:00"}, slots[0])
	assert.Equal(t, slots[0], slots[1])
}

func TestRemoveSlot_OutOfRangeIsNoOp(t *testing.T) {
	var sched WeekSchedule
	sched.AddSlot(Monday)

	sched.RemoveSlot(Monday, 5)
	sched.RemoveSlot(Monday, -1)
	assert.Len(t, sched.Slots(Monday), 1)

	sched.RemoveSlot(Monday, 0)
	assert.Empty(t, sched.Slots(Monday))
}

func TestUpdateSlot_SetsFieldWithoutValidation(t *testing.T) {
	var sched WeekSchedule
	sched.AddSlot(Monday)

	sched.UpdateSlot(Monday, 0, FieldStart, "23:00")
	sched.UpdateSlot(Monday, 0, FieldEnd, "01:00")

	slot := sched.Slots(Monday)[0]
	assert.Equal(t, "23:00", slot.Start)
	assert.Equal(t, "01:00", slot.End)

	// Out-of-range index is a no-op
	sched.UpdateSlot(Monday, 3, FieldStart, "00:00")
	assert.Equal(t, "23:00", sched.Slots(Monday)[0].Start)
}

func TestCopyDay_DeepCopiesSlots(t *testing.T) {
	var sched WeekSchedule
	sched.AddSlot(Monday)
	sched.AddSlot(Monday)
	sched.UpdateSlot(Monday, 1, FieldStart, "18:00")
	sched.UpdateSlot(Monday, 1, FieldEnd, "20:00")

	sched.CopyDay(Monday, Friday)

	require.Equal(t, sched.Slots(Monday), sched.Slots(Friday))

	// Mutating the copy must not touch the source
	sched.UpdateSlot(Friday, 0, FieldStart, "06:00")
	assert.Equal(t, "09:00", sched.Slots(Monday)[0].Start)
	assert.Equal(t, "06:00", sched.Slots(Friday)[0].Start)
}

func TestCopyDay_EmptySourceClearsTarget(t *testing.T) {
	var sched WeekSchedule
	sched.AddSlot(Friday)

	sched.CopyDay(Monday, Friday)

	assert.Empty(t, sched.Slots(Friday))
}
