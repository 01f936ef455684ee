package changelog

import (
	"testing"
	"time"
)

// changelogA starts with a blank line and ends with a trailing blank line.
const changelogA = `
=========
CHANGELOG
=========

Next Release
------------

Some contents

0.2.0 (2014-08-11)
------------------

Hello

* a
* b
  c

0.1.0
-----

* Test

`

// canonicalChangelog is laid out exactly as Render writes it.
const canonicalChangelog = `=========
CHANGELOG
=========

Next Release
------------

Some contents

0.2.0 (2014-08-11)
------------------

Hello

* a
* b
  c

0.1.0
-----

* Test
`

// changelogB has a single entry with an empty body.
const changelogB = `
CHANGELOG
=========

0.0.1
-----

`

// pinNow fixes the render date for the duration of the test.
func pinNow(t *testing.T, now time.Time) {
	t.Helper()
	orig := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = orig })
}
