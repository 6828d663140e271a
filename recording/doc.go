// Package recording captures pixbuf drawing calls as typed commands.
//
// A Recorder implements pixbuf.Canvas, so anything that draws onto a
// canvas (glyph scripts, animation frames) can draw onto a Recorder
// instead. The captured Recording is inspectable command by command and
// can be replayed onto any other Canvas:
//
//	rec := recording.NewRecorder(64, 64)
//	glyph.Draw(rec, "smile", 32, 32, 48)
//	r := rec.FinishRecording()
//
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
//	s, _ := pixbuf.NewSurface(64, 64)
//	r.Playback(s)
//
// Style changes are recorded only when they change the recorder's current
// style, so a recording contains no redundant Set commands. Playback onto a
// Surface produces exactly the pixels the original calls would have.
package recording
