package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_EmptyScheduleIsValid(t *testing.T) {
	var sched WeekSchedule
	assert.Empty(t, sched.Validate())
}

func TestValidate_InvertedSlotReported(t *testing.T) {
	var sched WeekSchedule
	sched.AddSlot(Monday)
	sched.UpdateSlot(Monday, 0, FieldStart, "17:00")
	sched.UpdateSlot(Monday, 0, FieldEnd, "09:00")

	errs := sched.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, "Monday: slot 1 start time must be before end time", errs[0])
}

func TestValidate_ZeroLengthSlotReported(t *testing.T) {
	var sched WeekSchedule
	sched.AddSlot(Tuesday)
	sched.UpdateSlot(Tuesday, 0, FieldStart, "09:00")
	sched.UpdateSlot(Tuesday, 0, FieldEnd, "09:00")

	errs := sched.Validate()

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Tuesday: slot 1")
}

func TestValidate_DuplicateDefaultSlotsOverlap(t *testing.T) {
	// Pressing "add slot" twice leaves two identical 09:00-17:00 slots
	var sched WeekSchedule
	sched.AddSlot(Tuesday)
	sched.AddSlot(Tuesday)

	errs := sched.Validate()

	require.NotEmpty(t, errs)
	assert.Equal(t, "Tuesday: slots 1 and 2 overlap", errs[0])
}

func TestValidate_PartialOverlapDetected(t *testing.T) {
	var sched WeekSchedule
	sched.AddSlot(Monday)
	sched.AddSlot(Monday)
	sched.UpdateSlot(Monday, 0, FieldStart, "09:00")
	sched.UpdateSlot(Monday, 0, FieldEnd, "12:00")
	sched.UpdateSlot(Monday, 1, FieldStart, "11:00")
	sched.UpdateSlot(Monday, 1, FieldEnd, "15:00")

	errs := sched.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, "Monday: slots 1 and 2 overlap", errs[0])
}

func TestValidate_TouchingSlotsDoNotOverlap(t *testing.T) {
	// End is exclusive: a slot starting exactly when another ends is fine
	var sched WeekSchedule
	sched.AddSlot(Monday)
	sched.AddSlot(Monday)
	sched.UpdateSlot(Monday, 0, FieldStart, "09:00")
	sched.UpdateSlot(Monday, 0, FieldEnd, "12:00")
	sched.UpdateSlot(Monday, 1, FieldStart, "12:00")
	sched.UpdateSlot(Monday, 1, FieldEnd, "17:00")

	assert.Empty(t, sched.Validate())
}

func TestValidate_OverlapBeforeOrderingWithinDay(t *testing.T) {
	var sched WeekSchedule

	// Monday: two overlapping slots, second also inverted
	sched.AddSlot(Monday)
	sched.AddSlot(Monday)
	sched.UpdateSlot(Monday, 1, FieldStart, "16:00")
	sched.UpdateSlot(Monday, 1, FieldEnd, "10:00")

	errs := sched.Validate()

	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "overlap")
	assert.Contains(t, errs[1], "start time must be before end time")
}

func TestValidate_DaysReportedInCanonicalOrder(t *testing.T) {
	var sched WeekSchedule

	sched.AddSlot(Sunday)
	sched.UpdateSlot(Sunday, 0, FieldStart, "20:00")
	sched.UpdateSlot(Sunday, 0, FieldEnd, "08:00")

	sched.AddSlot(Tuesday)
	sched.AddSlot(Tuesday)

	errs := sched.Validate()

	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "Tuesday")
	assert.Contains(t, errs[1], "Sunday")
}

func TestValidate_SeparateDaysDoNotInteract(t *testing.T) {
	// Identical times on different days are not an overlap
	var sched WeekSchedule
	sched.AddSlot(Monday)
	sched.AddSlot(Tuesday)

	assert.Empty(t, sched.Validate())
}
