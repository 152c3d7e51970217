package dto

import "time"

type TurnSettingsDTO struct {
	UseOnlineContext bool `json:"use_online_context"`
	UseDatabase      bool `json:"use_database"`
}

type PdfReferenceDTO struct {
	Name        string `json:"name"`
	PageNumbers []int  `json:"page_number"`
}

type SubmitQueryRequest struct {
	Query      string           `json:"query" validate:"required"`
	ChatId     string           `json:"chat_id"`
	ChatName   string           `json:"chat_name"`
	References []string         `json:"references"`
	Settings   *TurnSettingsDTO `json:"settings"`
}

type SubmitQueryResponse struct {
	ChatId          string            `json:"chat_id"`
	Answer          string            `json:"answer"`
	ChatName        string            `json:"chat_name"`
	PdfReferences   []PdfReferenceDTO `json:"pdf_references"`
	SimilarImages   []string          `json:"similar_images"`
	OnlineImages    []string          `json:"online_images"`
	OnlineVideos    []string          `json:"online_videos"`
	OnlineLinks     []string          `json:"online_links"`
	RelevantQueries []string          `json:"relevant_queries"`
}

type ChatListItemResponse struct {
	ChatId    string    `json:"chat_id"`
	ChatName  string    `json:"chat_name"`
	Query     string    `json:"query"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatHistoryItemResponse struct {
	Id              string            `json:"id"`
	Query           string            `json:"query"`
	Answer          string            `json:"answer"`
	PdfReferences   []PdfReferenceDTO `json:"pdf_references"`
	SimilarImages   []string          `json:"similar_images"`
	OnlineImages    []string          `json:"online_images"`
	OnlineVideos    []string          `json:"online_videos"`
	OnlineLinks     []string          `json:"online_links"`
	RelevantQueries []string          `json:"relevant_queries"`
	Settings        *TurnSettingsDTO  `json:"settings,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}
