package trialkit

// LegalNotice provides license notices for Trialkit itself and any third-party
// dependencies.
const LegalNotice = `Trialkit

Licensed under the terms of the MIT License. A copy of this license can be
found online at https://opensource.org/licenses/MIT.

================================================================================
Trialkit depends on the following third-party software:
================================================================================

Go and the Go standard library.

https://golang.org/

Copyright (c) 2009 The Go Authors. All rights reserved.

Used under the terms of the 3-Clause BSD License (Google version).

--------------------------------------------------------------------------------

cobra and pflag

https://github.com/spf13/cobra
https://github.com/spf13/pflag

Used under the terms of the Apache License, Version 2.0 and the 3-Clause BSD
License, respectively.

--------------------------------------------------------------------------------

color

https://github.com/fatih/color

Copyright (c) 2013 Fatih Arslan

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

go-isatty and go-colorable

https://github.com/mattn/go-isatty
https://github.com/mattn/go-colorable

Copyright (c) Yasuhiro MATSUMOTO

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

errors

https://github.com/pkg/errors

Copyright (c) 2015, Dave Cheney <dave@cheney.net>

Used under the terms of the 2-Clause BSD License.

--------------------------------------------------------------------------------

basex

https://github.com/eknkc/basex

Copyright (c) 2017 Ekin Koc

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

go-difflib

https://github.com/pmezard/go-difflib

Copyright (c) 2013, Patrick Mezard

Used under the terms of the 3-Clause BSD License.

--------------------------------------------------------------------------------

go-humanize

https://github.com/dustin/go-humanize

Copyright (c) 2005-2008 Dustin Sallings <dustin@spy.net>

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

godotenv

https://github.com/joho/godotenv

Copyright (c) 2013 John Barton

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

uuid

https://github.com/google/uuid

Copyright (c) 2009, 2014 Google Inc. All rights reserved.

Used under the terms of the 3-Clause BSD License.

--------------------------------------------------------------------------------

yaml

https://gopkg.in/yaml.v2
https://gopkg.in/yaml.v3

Copyright (c) 2006-2011 Kirill Simonov
Copyright (c) 2011-2019 Canonical Ltd

Used under the terms of the Apache License, Version 2.0 and the MIT License.
`
