/*
Package cpf validates Brazilian individual taxpayer identifiers (CPF).

A CPF is eleven decimal digits: a nine-digit base followed by two check
digits. Input may carry any punctuation ("529.982.247-25"); every character
that is not an ASCII digit is discarded before validation.

# Architecture

  - domain: normalization, check digit computation and the rejection Reason
  - service: random generation, 000.000.000-00 formatting and log-safe masking
  - usecase: validation orchestration with the optional debt registry lookup
  - repository: read-only debt registry queries (PostgreSQL, MySQL)
  - http: gin handler and DTOs

# Check Digits

The first check digit weights the base digits 10 down to 2; the second
weights the base plus the first check digit 11 down to 2. For each sum,
a remainder below 2 yields 0, otherwise 11 minus the remainder.

Identifiers made of a single repeated digit satisfy the arithmetic but are
rejected.

# Privacy

Full identifiers never reach the logs. Log records carry the masked form
(***.***.247-25) and, when LOG_FINGERPRINT_KEY is set, a short keyed BLAKE2b
fingerprint of the digits.
*/
package cpf
