package filter

// JournalTimeLayout is the timestamp layout journalctl accepts for --since/--until.
const JournalTimeLayout = "2006-01-02 15:04:05"

// JournalctlArgs translates the filter into journalctl match arguments.
// A zero Dates bound is left open.
func (o Options) JournalctlArgs() []string {
	var args []string
	switch t := o.Time.(type) {
	case CurrentBoot:
		args = append(args, "--boot")
	case PreviousBoot:
		args = append(args, "--boot=-1")
	case Dates:
		if !t.Since.IsZero() {
			args = append(args, "--since="+t.Since.Local().Format(JournalTimeLayout))
		}
		if !t.Until.IsZero() {
			args = append(args, "--until="+t.Until.Local().Format(JournalTimeLayout))
		}
	}
	switch s := o.Source.(type) {
	case Unit:
		if s.Name != "" {
			args = append(args, "--unit="+s.Name)
		}
	case File:
		if s.Path != "" {
			args = append(args, s.Path)
		}
	}
	return args
}

