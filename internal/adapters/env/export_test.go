// export_test.go exports private functions for white-box testing.
package env

// ParseDotenvExported exposes the dotenv parser for testing.
var ParseDotenvExported = parseDotenv
