package coupon

import "strings"

// User-facing rejection messages. The backend only guarantees a human-readable
// error string, so rejections are classified by substring rather than by code.
const (
	MsgInvalidCode   = "Invalid coupon code."
	MsgExpired       = "This coupon has expired."
	MsgAlreadyUsed   = "You have already used this coupon or its usage limit has been reached."
	MsgNotApplicable = "This coupon is not applicable to this order."
	MsgLoginRequired = "Please log in to use this coupon."
)

// rejectionRule maps backend error substrings to one fixed message. Rules are
// evaluated top to bottom and the first hit wins; backend messages can contain
// several matching substrings, so the order here is the precedence.
type rejectionRule struct {
	patterns []string
	message  string
}

var rejectionRules = []rejectionRule{
	{patterns: []string{"not found", "invalid"}, message: MsgInvalidCode},
	{patterns: []string{"expired"}, message: MsgExpired},
	{patterns: []string{"already used", "usage limit"}, message: MsgAlreadyUsed},
	{patterns: []string{"not applicable", "minimum"}, message: MsgNotApplicable},
	{patterns: []string{"unauthorized", "authentication", "log in", "login"}, message: MsgLoginRequired},
}

// RejectionMessage translates a raw backend error message into the fixed
// user-facing text, falling back to the raw message verbatim when no rule
// matches.
func RejectionMessage(backendMessage string) string {
	lowered := strings.ToLower(backendMessage)
	for _, rule := range rejectionRules {
		for _, p := range rule.patterns {
			if strings.Contains(lowered, p) {
				return rule.message
			}
		}
	}
	return backendMessage
}
