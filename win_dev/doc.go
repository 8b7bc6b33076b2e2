// Package win_dev holds the raw user32 calls used to enumerate display
// devices and monitors. It is empty on other platforms.
package win_dev
