package domain

import "time"

// BlockType labels one activity in the daily plan.
type BlockType string

const (
	BlockFeeding      BlockType = "Feeding"
	BlockAwake        BlockType = "Awake / Play"
	BlockNap          BlockType = "Nap"
	BlockNightRoutine BlockType = "Night Routine"
	BlockNightSleep   BlockType = "Night sleep"
)

const (
	FeedDuration         = 30 * time.Minute
	AwakeDuration        = 60 * time.Minute
	NapDuration          = 90 * time.Minute
	NightRoutineDuration = 30 * time.Minute
)

// Block is a single scheduled activity. End is nil only for the open-ended
// night-sleep block that closes the day.
type Block struct {
	ID    string     `json:"id"`
	Type  BlockType  `json:"type"`
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
}

// Plan is one generated day of blocks, built fresh on every call and
// replaced wholesale when the inputs change.
type Plan struct {
	Name   string    `json:"name"`
	Day    time.Time `json:"day"`
	Blocks []Block   `json:"blocks"`
}
