package opensubtitles

import (
	coreErrors "github.com/angelospk/opensubtitles-xmlrpc/pkg/core/errors"
)

// The methods below map the rest of the XML-RPC API. None of them is wired
// yet; each returns coreErrors.ErrNotImplemented. The remote signature of
// every method is kept in its comment.

// MovieHashInfo is one movie file hash entry sent to SearchToMail and InsertMovieHash.
type MovieHashInfo struct {
	MovieHash     string
	MovieByteSize int64
	IMDBID        string
	MovieTimeMS   int64
	MovieFPS      float64
	MovieFilename string
}

// SearchToMail
//
//	array SearchToMail( $token, array( $sublanguageid, $sublanguageid, ...),
//	    array( array( 'moviehash' => $moviehash, 'moviesize' => $moviesize), ...) )
func (c *Client) SearchToMail(languages []string, movies []MovieHashInfo) (Response, error) {
	return nil, coreErrors.NotImplemented("SearchToMail")
}

// CheckSubtitleHash
//
//	array CheckSubHash( $token, array($subhash, $subhash, ...) )
func (c *Client) CheckSubtitleHash(subHashes []string) (Response, error) {
	return nil, coreErrors.NotImplemented("CheckSubHash")
}

// CheckMovieHash
//
//	array CheckMovieHash( $token, array($moviehash, $moviehash, ...) )
func (c *Client) CheckMovieHash(movieHashes []string) (Response, error) {
	return nil, coreErrors.NotImplemented("CheckMovieHash")
}

// CheckMovieHash2
//
//	array CheckMovieHash2( $token, array($moviehash, $moviehash, ...) )
func (c *Client) CheckMovieHash2(movieHashes []string) (Response, error) {
	return nil, coreErrors.NotImplemented("CheckMovieHash2")
}

// InsertMovieHash
//
//	array InsertMovieHash( $token, array( array('moviehash' => $moviehash,
//	    'moviebytesize' => $moviebytesize, 'imdbid' => $imdbid, 'movietimems' => $movietimems,
//	    'moviefps' => $moviefps, 'moviefilename' => $moviefilename), array(...) ) )
func (c *Client) InsertMovieHash(movies []MovieHashInfo) (Response, error) {
	return nil, coreErrors.NotImplemented("InsertMovieHash")
}

// DetectLanguage
//
//	array DetectLanguage( $token, array($text, $text, ...) )
func (c *Client) DetectLanguage(texts []string) (Response, error) {
	return nil, coreErrors.NotImplemented("DetectLanguage")
}

// ReportWrongMovieHash
//
//	array ReportWrongMovieHash( $token, $IDSubMovieFile )
func (c *Client) ReportWrongMovieHash(subMovieFileID string) (Response, error) {
	return nil, coreErrors.NotImplemented("ReportWrongMovieHash")
}

// GetSubtitleLanguages
//
//	array GetSubLanguages( $language = 'en' )
func (c *Client) GetSubtitleLanguages(language string) (Response, error) {
	return nil, coreErrors.NotImplemented("GetSubLanguages")
}

// GetAvailableTranslations
//
//	array GetAvailableTranslations( $token, $program )
func (c *Client) GetAvailableTranslations(program string) (Response, error) {
	return nil, coreErrors.NotImplemented("GetAvailableTranslations")
}

// GetTranslation
//
//	array GetTranslation( $token, $iso639, $format, $program )
func (c *Client) GetTranslation(iso639, format, program string) (Response, error) {
	return nil, coreErrors.NotImplemented("GetTranslation")
}

// GetIMDBMovieDetails
//
//	array GetIMDBMovieDetails( $token, $imdbid )
func (c *Client) GetIMDBMovieDetails(imdbID string) (Response, error) {
	return nil, coreErrors.NotImplemented("GetIMDBMovieDetails")
}

// InsertMovie
//
//	array InsertMovie( $token, array('moviename' => $moviename, 'movieyear' => $movieyear) )
func (c *Client) InsertMovie(movieName string, movieYear int) (Response, error) {
	return nil, coreErrors.NotImplemented("InsertMovie")
}

// SubtitlesVote
//
//	array SubtitlesVote( $token, array('idsubtitle' => $idsubtitle, 'score' => $score) )
func (c *Client) SubtitlesVote(subtitleID string, score int) (Response, error) {
	return nil, coreErrors.NotImplemented("SubtitlesVote")
}

// GetComments
//
//	array GetComments( $token, array($idsubtitle, $idsubtitle, ...))
func (c *Client) GetComments(subtitleIDs []string) (Response, error) {
	return nil, coreErrors.NotImplemented("GetComments")
}

// AddComment
//
//	array AddComment( $token, array('idsubtitle' => $idsubtitle, 'comment' => $comment, 'badsubtitle' => $int) )
func (c *Client) AddComment(subtitleID, comment string, badSubtitle bool) (Response, error) {
	return nil, coreErrors.NotImplemented("AddComment")
}

// AddRequest
//
//	array AddRequest( $token, array('sublanguageid' => $sublanguageid, 'idmovieimdb' => $idmovieimdb, 'comment' => $comment ) )
func (c *Client) AddRequest(languageID, imdbID, comment string) (Response, error) {
	return nil, coreErrors.NotImplemented("AddRequest")
}
