// Package probe runs short-lived host commands used to discover facts about
// the machine (where a binary lives, whether a file exists inside WSL, what
// npm's global prefix is). A probe never fails loudly: callers get the
// trimmed stdout and a success flag, and any launch error, non-zero exit or
// timeout is reported only as ok == false.
package probe
