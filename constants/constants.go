package constants

import (
	"os"
	"strconv"
)

func GetListenAddr() string {
	addr := os.Getenv("RTTTL_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetOutDir() string {
	path := os.Getenv("RTTTL_OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

// GetStrictDefault reports whether note tokens should be parsed strictly when
// no flag says otherwise.
func GetStrictDefault() bool {
	strict, err := strconv.ParseBool(os.Getenv("RTTTL_STRICT"))
	if err != nil {
		return false
	}
	return strict
}

const TicksPerQuarter = 960

const NoteVelocity = 100

const NoteChannel = 0

var RingtoneExtensions = []string{".rtttl", ".rtx", ".txt"}
