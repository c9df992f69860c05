package utils

import (
	jfsutils "github.com/juicedata/juicefs/pkg/utils"
	"github.com/sirupsen/logrus"
)

// GetLogger returns the named logger shared by all commands.
var GetLogger = jfsutils.GetLogger

func SetLogLevel(lvl logrus.Level) {
	jfsutils.SetLogLevel(lvl)
}

func DisableLogColor() {
	jfsutils.DisableLogColor()
}
