package jsonconfig

import (
	"bytes"
	"encoding/json"
	"path"
	"regexp"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var configNamePattern = regexp.MustCompile(`^[[:alnum:]_-]*\.[[:alnum:]_-]*$`)

var emptyJson = []byte("{}")

// IsConfigName reports whether configFlag looks like a config name (foo.bar) rather than JSON text.
func IsConfigName(configFlag string) bool {
	return configNamePattern.MatchString(configFlag)
}

// GetConfigText finds the right text for a configFlag.
// If configFlag looks like a filename (of the form foo.bar where foo and bar are just alphanumeric),
// read it as an asset.
// Otherwise, assume it's the literal json text.
func GetConfigText(configFlag string, asset func(string) ([]byte, error)) ([]byte, error) {
	if IsConfigName(configFlag) {
		configFileName := path.Join("config", configFlag)
		log.Infof("reading config %v", configFileName)
		configText, err := asset(configFileName)
		if err != nil {
			return nil, errors.Wrapf(err, "error loading config %v", configFileName)
		}
		return configText, nil
	}
	log.Infof("using --config as JSON config: %v", configFlag)
	return []byte(configFlag), nil
}

// Unmarshal parses text into v, treating empty text as an empty object.
// Unknown fields are rejected so a mistyped key does not silently fall back to a zero value.
func Unmarshal(text []byte, v interface{}) error {
	if len(text) == 0 {
		text = emptyJson
	}
	if !json.Valid(text) {
		return errors.New("config is not valid JSON")
	}
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(err, "couldn't parse config")
	}
	return nil
}
