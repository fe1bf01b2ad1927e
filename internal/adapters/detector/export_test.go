package detector

// Detect exports the private detection logic for testing purposes.
var Detect = detect
