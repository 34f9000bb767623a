package constant

// AsciiArtLogo is the banner rendered above the root command help output.
const AsciiArtLogo = `
      _
  ___| |_ _ __ ___  __ _ _ __ ___  ___  __ _ _ __
 / __| __| '__/ _ \/ _` + "`" + ` | '_ ` + "`" + ` _ \/ __|/ _` + "`" + ` | '_ \
 \__ \ |_| | |  __/ (_| | | | | | \__ \ (_| | | | |
 |___/\__|_|  \___|\__,_|_| |_| |_|___/\__,_|_| |_|
`
