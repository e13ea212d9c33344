package model

import "time"

// Session holds one fetched result for display and export.
type Session struct {
	ID        string          `bson:"_id" json:"id"`
	VideoID   string          `bson:"videoId" json:"videoId"`
	SourceURL string          `bson:"sourceUrl" json:"sourceUrl"`
	Records   []CommentRecord `bson:"records" json:"records"`
	FetchedAt time.Time       `bson:"fetchedAt" json:"fetchedAt"`
	ExpiresAt time.Time       `bson:"expiresAt" json:"expiresAt"`
}

// Replies counts the reply records in the session.
func (s Session) Replies() int {
	n := 0
	for _, r := range s.Records {
		if r.IsReply {
			n++
		}
	}
	return n
}
