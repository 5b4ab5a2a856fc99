package redis

import "fmt"

// Key prefix for all arena data
const keyPrefix = "arena"

// accountKey returns the Redis key for an Account
func accountKey(id string) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, id)
}

// emailIndexKey returns the Redis key for the email -> account id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// sessionKey returns the Redis key for a Session
func sessionKey(token string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}

// leaderboardKey returns the Redis key for the leaderboard entry LIST.
// A list keeps insertion order, which the ranking sort relies on for ties.
func leaderboardKey() string {
	return fmt.Sprintf("%s:leaderboard", keyPrefix)
}

// livePlayerKey returns the Redis key for a LivePlayer snapshot
func livePlayerKey(id string) string {
	return fmt.Sprintf("%s:live:%s", keyPrefix, id)
}

// liveOrderKey returns the Redis key for the LIST of live player ids
func liveOrderKey() string {
	return fmt.Sprintf("%s:idx:live_order", keyPrefix)
}
