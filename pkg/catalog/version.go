package catalog

// Version is the formulary release.
const Version = "0.4.0"
