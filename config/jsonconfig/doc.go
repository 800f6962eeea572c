/*
Jsonconfig resolves a --config flag to JSON text and decodes it.

A flag of the form foo.bar names a built-in config, looked up through an asset function
under config/foo.bar. Anything else is taken as literal JSON.

	text, err := jsonconfig.GetConfigText(flag, config.Asset)
	var c config.JSONConfig
	err = jsonconfig.Unmarshal(text, &c)
*/
package jsonconfig
