package entity

import (
	"time"

	"github.com/google/uuid"
)

// PdfReference points into a source document: a document name plus the pages
// that ground the answer, in the order the answerer cited them.
type PdfReference struct {
	Name        string `json:"name"`
	PageNumbers []int  `json:"page_number"`
}

// TurnSettings captures the retrieval toggles that were active when a turn
// was submitted. Nil on turns recorded before settings were tracked.
type TurnSettings struct {
	UseOnlineContext bool `json:"use_online_context"`
	UseDatabase      bool `json:"use_database"`
}

type ChatTurn struct {
	Id              uuid.UUID
	ChatSessionId   uuid.UUID
	Query           string
	Answer          string
	PdfReferences   []PdfReference
	SimilarImages   []string
	OnlineImages    []string
	OnlineVideos    []string
	OnlineLinks     []string
	RelevantQueries []string
	Settings        *TurnSettings
	CreatedAt       time.Time
}
