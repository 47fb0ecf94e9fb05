// Resolves the SDKMAN directory layout.
//
// The base directory comes from an explicit override (normally the value of
// SDKMAN_DIR) or, when the override is empty, from the user's home directory
// joined with ".sdkman". The home directory is looked up through XDG, which
// uses platform-native conventions on macOS and Windows.
package paths
