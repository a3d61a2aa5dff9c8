package storage

// BanListKey is the set of banned usernames
const BanListKey = "ban_list"

// Player record fields
const (
	FieldPassword       = "password"
	FieldRating         = "rating"
	FieldSuspicionCount = "suspicion_count"
	FieldIsAdmin        = "is_admin"
	FieldBanReason      = "ban_reason"
	FieldCreatedAt      = "created_at"
)

// PlayerKey returns the record key for a username
func PlayerKey(username string) string {
	return "user:" + username
}
