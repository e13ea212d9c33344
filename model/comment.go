package model

// CommentRecord is one comment or one reply, flattened out of its thread.
type CommentRecord struct {
	Author      string `bson:"author" json:"author"`
	Body        string `bson:"body" json:"body"`
	LikeCount   int64  `bson:"likeCount" json:"likeCount"`
	PublishedAt string `bson:"publishedAt" json:"publishedAt"`
	IsReply     bool   `bson:"isReply" json:"isReply"`
}

// Thread is a top-level comment with the replies the API returned inline.
type Thread struct {
	TopLevel CommentRecord
	Replies  []CommentRecord
}

// ThreadPage is one validated page of the commentThreads listing.
type ThreadPage struct {
	Threads       []Thread
	NextPageToken string
}

// Flatten emits the top-level record followed by its replies, in API order.
func (t Thread) Flatten() []CommentRecord {
	records := make([]CommentRecord, 0, 1+len(t.Replies))
	top := t.TopLevel
	top.IsReply = false
	records = append(records, top)
	for _, r := range t.Replies {
		r.IsReply = true
		records = append(records, r)
	}
	return records
}

// CommentPage is one flattened page, as handed to streaming callers.
type CommentPage struct {
	Index         int             `json:"index"`
	Records       []CommentRecord `json:"records"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
}
