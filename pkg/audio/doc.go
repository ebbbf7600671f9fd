// Package audio is an umbrella for the audio sub-packages:
//
//   - pcm: canonical raw PCM format descriptions
//   - wav: minimal RIFF/WAVE decoding and encoding
//   - resampler: sample-rate and channel conversion
//   - normalize: upload-to-canonical-WAV staging for the voice pipeline
package audio
