// SPDX-License-Identifier: Apache-2.0

package flags

import (
	"github.com/spf13/viper"
)

func LogLevel() string {
	return viper.GetString("LOG_LEVEL")
}

func ConfigFile() string {
	return viper.GetString("CONFIG")
}

func HTML() bool { return viper.GetBool("HTML") }

func HistogramMode() string {
	return viper.GetString("MODE")
}

func ReportFormat() string {
	return viper.GetString("FORMAT")
}

func Engine() string {
	return viper.GetString("ENGINE")
}

func Passes() int { return viper.GetInt("PASSES") }

func Bibtex() bool { return viper.GetBool("BIBTEX") }

func NoCompile() bool { return viper.GetBool("NO_COMPILE") }

func Prefix() string {
	return viper.GetString("PREFIX")
}
