package domain

import "time"

// MessageSender is the side of a conversation that wrote a message.
type MessageSender string

const (
	SenderCoach   MessageSender = "coach"
	SenderAthlete MessageSender = "athlete"
)

// SenderFor returns the side u writes as.
func SenderFor(u *User) MessageSender {
	if u.IsCoach() {
		return SenderCoach
	}
	return SenderAthlete
}

type Message struct {
	ID        string        `bson:"id" json:"id" yaml:"id"`
	Sender    MessageSender `bson:"sender" json:"sender" yaml:"sender"`
	Content   string        `bson:"content" json:"content" yaml:"content"`
	Timestamp string        `bson:"timestamp" json:"timestamp" yaml:"timestamp"` // Display label
	Read      bool          `bson:"read" json:"read" yaml:"read"`
}

// Conversation is the message thread between the coach and one athlete.
type Conversation struct {
	ID              string    `bson:"_id" json:"id" yaml:"id"`
	AthleteID       string    `bson:"athleteId" json:"athleteId" yaml:"athleteId"`
	AthleteName     string    `bson:"athleteName" json:"athleteName" yaml:"athleteName"`
	AthleteInitials string    `bson:"athleteInitials" json:"athleteInitials" yaml:"athleteInitials"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt" yaml:"updatedAt"` // When the last message arrived
	Messages        []Message `bson:"messages" json:"messages" yaml:"messages"`
}

// Last returns the newest message, or nil for an empty thread.
func (c *Conversation) Last() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}
