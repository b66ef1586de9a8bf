package stratum

// Version is the library version reported by the stratum CLI.
const Version = "0.2.0"
