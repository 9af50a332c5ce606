/*
feedback.go - Guest feedback with optional management response

PURPOSE:
  Feedback is a rated comment from a guest about a stay. Ratings are
  restricted to [1,5]; the stay date defaults to the submission date
  when omitted.
*/
package hotel

type Feedback struct {
	ID          FeedbackID
	GuestID     GuestID
	Rating      int
	Comment     string
	SubmittedOn Date
	StayDate    Date

	response string
}

// Response returns the management response, empty until one is added.
func (f *Feedback) Response() string { return f.response }

// AddResponse attaches or replaces the management response.
func (f *Feedback) AddResponse(text string) { f.response = text }
