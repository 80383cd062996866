package services

import (
	"strconv"

	"github.com/alumnet/api/internal/cache"
)

// Single-entity cache keys, invalidated individually alongside family
// invalidations.

func idParam(id int64) cache.Param {
	return cache.Param{Name: "id", Value: strconv.FormatInt(id, 10)}
}

func mentorPublicKey(mentorID int64) string {
	return cache.Key("mentor:public", idParam(mentorID))
}

func studentProfileKey(userID int64) string {
	return cache.Key("student:profile", idParam(userID))
}

func alumniProfileKey(userID int64) string {
	return cache.Key("alumni:profile", idParam(userID))
}
