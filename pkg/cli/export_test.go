package cli

var SelectRepository = selectRepository
