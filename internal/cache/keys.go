package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	profileKeyPrefix       = "profile:user:%d"
	profileHandleKeyPrefix = "profile:handle:%s"
	postKeyPrefix          = "post:%d"
	postsListKey           = "posts:all"
	profilesListKey        = "profiles:all"
)

const (
	ProfileTTL = 10 * time.Minute
	PostTTL    = 5 * time.Minute
	ListTTL    = 1 * time.Minute
)

func ProfileKey(userID uint) string {
	return fmt.Sprintf(profileKeyPrefix, userID)
}

func ProfileHandleKey(handle string) string {
	return fmt.Sprintf(profileHandleKeyPrefix, handle)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

func PostsListKey() string {
	return postsListKey
}

func ProfilesListKey() string {
	return profilesListKey
}

func Invalidate(ctx context.Context, keys ...string) {
	if client != nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidateProfile drops the per-user and per-handle entries along with the
// profile list, which embeds the profile. A rename passes both the new and
// the prior handle so the retired key cannot keep serving the profile.
func InvalidateProfile(ctx context.Context, userID uint, handles ...string) {
	keys := []string{ProfileKey(userID), profilesListKey}
	for _, handle := range handles {
		if handle != "" {
			keys = append(keys, ProfileHandleKey(handle))
		}
	}
	Invalidate(ctx, keys...)
}

// InvalidatePost drops the post entry and the post list.
func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID), postsListKey)
}
