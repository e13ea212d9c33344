package utils

// InvalidURLMessage is shown when a submitted link is not a recognized YouTube URL.
const InvalidURLMessage = "Invalid YouTube link"

// SSE event names of /api/comments/stream.
const (
	EventPage  = "page"
	EventDone  = "done"
	EventError = "error"
)

// NATS subjects served by the worker.
const (
	SubjectFetchComments       = "fetch.comments"
	SubjectFetchCommentsResult = "fetch.comments.result"
)

/*curl commands =>

curl "http://localhost:8080/api/resolve?url=https://youtu.be/VIDEO_ID"

curl "http://localhost:8080/api/comments?url=https://www.youtube.com/watch?v=VIDEO_ID"

curl -N "http://localhost:8080/api/comments/stream?videoId=VIDEO_ID"

curl "http://localhost:8080/api/sessions/SESSION_ID"

curl -OJ "http://localhost:8080/export/SESSION_ID?format=xlsx"

nats req fetch.comments '{"url":"https://youtu.be/VIDEO_ID","requestId":"r1"}'

*/
